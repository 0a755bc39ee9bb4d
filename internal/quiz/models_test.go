package quiz

import "testing"

func TestParseTuning(t *testing.T) {
	tuning, err := ParseTuning(map[string]interface{}{
		"tolerance":         0.5,
		"overlap_threshold": 0.25,
		"exact_match":       true,
		"unknown_key":       "ignored",
	})
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tuning.Tolerance != 0.5 || tuning.OverlapThreshold != 0.25 || !tuning.ExactMatch {
		t.Fatalf("tuning = %+v", tuning)
	}

	if _, err := ParseTuning(map[string]interface{}{"tolerance": true}); err == nil {
		t.Fatal("expected error for bool tolerance")
	}
	if _, err := ParseTuning(nil); err != nil {
		t.Fatalf("nil metadata should be fine: %v", err)
	}
}
