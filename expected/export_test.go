// SPDX-License-Identifier: MIT

package expected

// Reconstruct exposes the predecessor walk to external tests.
var Reconstruct = reconstruct
