package check

import "testing"

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Fail("something missing")

	if result.OK {
		t.Error("OK = true, want false")
	}
	if result.Message != "something missing" {
		t.Errorf("Message = %q, want %q", result.Message, "something missing")
	}
}

func TestResult_Failf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Failf("card %d has no %s element", 2, "email")

	if result.OK {
		t.Error("OK = true, want false")
	}
	want := "card 2 has no email element"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestResult_Pass(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Pass()

	if !result.OK {
		t.Error("OK = false, want true")
	}
}

func TestResult_Detail(t *testing.T) {
	r := &Result{Name: "test"}

	r.Detail("count", 3).Detail("clicked", true)

	if r.Details["count"] != 3 {
		t.Errorf("Details[count] = %v, want 3", r.Details["count"])
	}
	if r.Details["clicked"] != true {
		t.Errorf("Details[clicked] = %v, want true", r.Details["clicked"])
	}
}
