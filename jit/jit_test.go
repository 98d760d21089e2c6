package jit

import "testing"

func TestModulePathAndString(t *testing.T) {
	m := &Module{path: "/tmp/taco_kernel_123.so"}
	if got, want := m.Path(), "/tmp/taco_kernel_123.so"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got := m.String(); got != "jit.Module(/tmp/taco_kernel_123.so)" {
		t.Errorf("String() = %q", got)
	}
}
