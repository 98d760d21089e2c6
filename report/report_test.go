package report

import "testing"

func TestRaiseProducesAnError(t *testing.T) {
	err := Raise("bad mode access on %s", "x1")
	if err.Error() != "bad mode access on x1" {
		t.Errorf("got %q", err.Error())
	}
}

func TestAnyErrorsDefaultsFalse(t *testing.T) {
	InitReporter(LogLevelSilent)
	if AnyErrors() {
		t.Error("expected no errors recorded on a fresh reporter")
	}
}

func TestPhaseReportingAtSilentLevelDoesNotPanic(t *testing.T) {
	InitReporter(LogLevelSilent)
	BeginPhase("lower")
	EndPhase(true)
	Finished(true, "")
}
