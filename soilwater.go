// Package soilwater simulates one-dimensional unsaturated soil-moisture flow
// through a discretized soil column using an explicit finite-difference form
// of Darcy's law with Clapp-Hornberger constitutive relations.
package soilwater

const nearzero = 1e-10
