package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// TestJSONEmitter verifies the structured report document
func TestJSONEmitter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	emitter := NewJSONEmitter(path)

	if err := emitter.Emit(testReport()); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if doc["src_remote"] != "dropbox:" || doc["dst_remote"] != "box:/SAOA" {
		t.Errorf("remotes = %v / %v", doc["src_remote"], doc["dst_remote"])
	}
	if doc["case_insensitive"] != true {
		t.Error("case_insensitive missing or false")
	}
	if doc["modtime_tolerance_seconds"] != 120.0 {
		t.Errorf("modtime_tolerance_seconds = %v, want 120", doc["modtime_tolerance_seconds"])
	}
	if doc["status"] != "fail" {
		t.Errorf("status = %v, want fail", doc["status"])
	}

	counts, ok := doc["counts"].(map[string]interface{})
	if !ok {
		t.Fatal("counts missing")
	}
	if counts["total_src_files"] != 3.0 || counts["missing_on_dst"] != 1.0 {
		t.Errorf("counts = %v", counts)
	}

	missing, ok := doc["missing_on_box"].([]interface{})
	if !ok || len(missing) != 1 {
		t.Fatalf("missing_on_box = %v, want one entry", doc["missing_on_box"])
	}

	mismatches, ok := doc["mismatches"].([]interface{})
	if !ok || len(mismatches) != 1 {
		t.Fatalf("mismatches = %v, want one entry", doc["mismatches"])
	}
	mm := mismatches[0].(map[string]interface{})
	if mm["modtime_diff_seconds"] != 200.0 {
		t.Errorf("modtime_diff_seconds = %v, want 200", mm["modtime_diff_seconds"])
	}

	dirs, ok := doc["directories"].(map[string]interface{})
	if !ok || len(dirs) != 2 {
		t.Fatalf("directories = %v, want A and B", doc["directories"])
	}
}

// TestJSONEmitterNulls verifies absent values serialize as null
func TestJSONEmitterNulls(t *testing.T) {
	report := testReport()
	report.MissingOnDst[0].Size = nil
	report.MissingOnDst[0].ModTime = nil

	path := filepath.Join(t.TempDir(), "report.json")
	if err := NewJSONEmitter(path).Emit(report); err != nil {
		t.Fatalf("Emit() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	var doc struct {
		Missing []struct {
			Size    *int64   `json:"size"`
			ModTime *float64 `json:"modtime"`
		} `json:"missing_on_box"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Missing[0].Size != nil || doc.Missing[0].ModTime != nil {
		t.Error("absent size/modtime did not round-trip as null")
	}
}

// TestStatusEmitter verifies the minimal gating document
func TestStatusEmitter(t *testing.T) {
	t.Run("Fail", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "status.json")
		if err := NewStatusEmitter(path).Emit(testReport()); err != nil {
			t.Fatalf("Emit() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		var doc map[string]interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		if doc["status"] != "fail" {
			t.Errorf("status = %v, want fail", doc["status"])
		}
		if _, ok := doc["counts"]; !ok {
			t.Error("counts missing from status document")
		}
		// The gating document stays minimal: no file lists
		if _, ok := doc["missing_on_box"]; ok {
			t.Error("status document carries the full missing list")
		}
	})

	t.Run("Pass", func(t *testing.T) {
		report := testReport()
		report.MissingOnDst = nil
		report.Mismatches = nil
		report.Counts.MissingOnDst = 0
		report.Counts.Mismatches = 0
		report.Status = "pass"

		path := filepath.Join(t.TempDir(), "status.json")
		if err := NewStatusEmitter(path).Emit(report); err != nil {
			t.Fatalf("Emit() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		var doc map[string]interface{}
		json.Unmarshal(data, &doc)
		if doc["status"] != "pass" {
			t.Errorf("status = %v, want pass", doc["status"])
		}
	})
}
