// Package builder generates reproducible maximum-flow instances as
// dimacs.Problem values, ready to be written to disk or converted into
// either solver engine.
//
// The package follows a functional-options design:
//
//   - Build(bopts, con) resolves the options into an immutable configuration
//     and runs a Constructor.
//   - Constructors:
//     – Segmentation(w,h): 4-connected labeling lattice, convertible with
//     Problem.Grid(w,h) as well as Problem.Graph.
//     – RandomSparse(n,p): Erdős–Rényi-like directed instance.
//     – Chain(n):          single path whose flow is its smallest capacity.
//   - Options:
//     – WithSeed / WithRand:          RNG for stochastic constructors.
//     – WithWeightFn / WithTerminalFn: capacity distributions for inner and
//     terminal arcs.
//     – WithIntegerWeights:            integral capacities for exact comparisons.
//   - Capacity distributions (WeightFn): ConstantWeightFn, UniformWeightFn,
//     IntegerWeightFn, NormalWeightFn.
//
// Guarantees:
//
//   - Node 1 is the source and node 2 the sink in every generated problem.
//   - Same constructor, options and seed yield the same arcs in the same order.
//   - Option constructors panic on meaningless inputs; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the method name.
package builder
