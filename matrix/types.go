// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/exp/constraints"

// Number is the element constraint for Dense: every integer and
// floating-point type, including named types built on them.
type Number interface {
	constraints.Integer | constraints.Float
}
