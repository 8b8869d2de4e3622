// Package fmu packages scenario time-series data into FMI 2.0 Co-Simulation archives.
//
// # Reading Guide
//
// The packages are layered leaves first:
//   - fmu/scenario: the "name;interp;t,v;t,v" text codec and the placeholder bank
//   - fmu/modeldesc: modelDescription.xml generation, value-reference allocation, parsing
//   - fmu/ssp: SSP parameter-set (.ssv) generation
//   - fmu/archive: platform naming, binary location and zip assembly
//
// The cmd/ package wires these together behind the scenario-fmu CLI. Nothing in this
// tree executes the packaged model; a co-simulation master consumes the archive.
package fmu
