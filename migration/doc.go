// SPDX-License-Identifier: MIT

// Package migration moves individuals between regions.
//
// Each migratory class owns a row-stochastic region×region matrix M. For
// every sex the class's region vector x is treated as a row vector and
// replaced by x·M, so entry M[i][j] is the fraction of region i that ends
// the step in region j. Classes without a matrix do not move. An Engine
// built without matrices is the identity.
package migration
