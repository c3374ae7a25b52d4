// Package expect is an expectation-chain assertion engine for
// Go tests.
//
// A chain captures one value together with the literal source
// text and location of the expression that produced it, collects
// checks against that value and concludes either as an error or
// by failing the running test:
//
//	expect.That(t, items).
//		Soft().
//		Expecting(expect.Contain(5)).
//		And().Not().Expecting(expect.BeEmpty[int]()).
//		Conclude()
//
// Checks run in registration order. By default evaluation stops
// at the first unsatisfied check; Soft collects every failure.
// Not negates only the next registered check.
//
// On failure the diagnostic reads:
//
//	chain_test.go:12:20
//	when testing expression
//
//	    items
//
//	  Expected slice items
//	    to contain 5
package expect
