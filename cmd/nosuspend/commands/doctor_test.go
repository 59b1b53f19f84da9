package commands

import "testing"

func TestDoctorFlags_MutuallyExclusive(t *testing.T) {
	origJSON, origQuiet := doctorJSON, doctorQuiet
	t.Cleanup(func() { doctorJSON, doctorQuiet = origJSON, origQuiet })

	doctorJSON, doctorQuiet = true, true
	if err := doctorCmd.PreRunE(doctorCmd, nil); err == nil {
		t.Error("expected error when --json and --quiet are combined")
	}

	doctorJSON, doctorQuiet = true, false
	if err := doctorCmd.PreRunE(doctorCmd, nil); err != nil {
		t.Errorf("unexpected error for --json alone: %v", err)
	}
}
