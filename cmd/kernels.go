package cmd

import (
	"github.com/keithc-ca/taco/ir"
	"github.com/keithc-ca/taco/lower"
	"github.com/keithc-ca/taco/util"
)

// kernelNames is the fixed, small set of canonical index-notation kernels
// SPEC_FULL.md §6 names: a vector copy and a CSR sparse matrix-vector
// product, matching spec.md §8's end-to-end scenarios 1-3. Ordered so
// usage text lists them deterministically.
var kernelNames = []string{"dense_copy", "sparse_to_dense_copy", "csr_spmv"}

// buildKernel resolves a kernel name to its lowered ir.Function. n is the
// symbolic dimension-size input a dense-iterating kernel needs; kernels
// whose iteration bounds come entirely from a sparse level's own pos array
// ignore it.
func buildKernel(name string) (*ir.Function, bool) {
	if !util.Contains(kernelNames, name) {
		return nil, false
	}

	n := ir.NewVar("n", ir.Int, false)
	switch name {
	case "dense_copy":
		return lower.DenseCopy(n), true
	case "sparse_to_dense_copy":
		return lower.SparseToDenseCopy(), true
	case "csr_spmv":
		return lower.CSRSpMV(n), true
	}
	return nil, false
}

// knownKernels renders the set of valid kernel names for usage/error text.
func knownKernels() []string {
	return util.Map(kernelNames, func(s string) string { return s })
}
