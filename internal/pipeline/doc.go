// Package pipeline orchestrates one FITS-to-mosaic conversion and the
// parallel batch mode over a directory of inputs.
//
// A single conversion flows strictly left to right: container open ->
// extension selection -> trim -> contrast scale -> stamp extraction ->
// mosaic composition -> PNG encode. Each stage either succeeds or
// returns an error naming the stage; nothing panics on bad input.
//
// Batch mode fans conversions out over a bounded worker group. The
// units share no mutable state, so a failing file only marks its own
// Result; siblings keep converting and the batch joins when every
// dispatched unit has returned.
package pipeline
