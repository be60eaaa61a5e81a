// Package board defines the grid entities that deductions refer to: digits,
// cells, candidates, houses (rows, columns and blocks), lines and minilines,
// and positions of cells within a house.
//
// All entities are small value types. Cells are numbered 0..80 in row-major
// order; houses are numbered rows first (0..8), then columns (9..17), then
// blocks (18..26), so a Line (a row or column) shares its numbering with House.
package board
