package affinity

import "testing"

func TestPinRejectsNegativeCPU(t *testing.T) {
	if err := Pin(-3); err == nil {
		t.Fatal("negative cpu accepted")
	}
}
