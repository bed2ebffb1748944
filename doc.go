/*
Package adasort provides adaptive sorting algorithms. Instead of running a
single general-purpose comparison sort, it first estimates cheap statistical
properties of a bounded prefix of the input, and then dispatches to the
sorting backend that best matches those properties.

Adasort provides the following subpackages:

adasort/heuristic extracts features from a sample (pre-sortedness and the
absence of NaN values) and maps them to a sorting strategy. The decision is a
pure function and can be inspected without sorting anything.

adasort/radix provides a linear-time least-significant-digit radix sort for
float32 keys, based on an order-preserving transformation of the IEEE-754 bit
patterns into unsigned integers.

adasort/sort provides the entry points Sort and Float32s, as well as the
backends they dispatch to: fixed sorting networks for tiny inputs, a stable
natural merge sort for nearly sorted inputs, and a depth-bounded introsort
with a heapsort fallback for everything else.

All algorithms are sequential and sort in place. Inputs containing NaN
values never cause a panic: incomparable pairs are treated as equal.
*/
package adasort
