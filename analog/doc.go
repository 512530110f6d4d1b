// Package analog provides second-order analog filter section descriptors and
// their series composition into a single rational transfer function in the
// Laplace variable.
//
// A [Section] is a unity-peak low-pass biquad parameterized by natural
// frequency ω0 (rad/s) and quality factor Q. [Compose] multiplies the
// transfer functions of all enabled, valid sections into one [Cascade];
// sections with non-positive or non-finite parameters are skipped silently,
// which keeps composition usable while a caller is mid-edit on a field.
//
// This package represents and evaluates transfer functions only. Sweep
// generation and specification checking live in the sweep and stencil
// packages; the analyze package ties them together.
package analog
