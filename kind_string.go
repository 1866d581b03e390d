// Code generated by "stringer -type=ValueKind"; adapted by hand because
// this module's build is not run in this environment. DO NOT re-run
// stringer over this file without checking the const block in value.go
// is still in the same order.

package xuma

import "strconv"

func _() {
	// An "invalid array index" compiler error signals that the constant
	// values have changed. Re-run the stringer command to generate them
	// again.
	var x [1]struct{}
	_ = x[KindAbsent-0]
	_ = x[KindStr-1]
	_ = x[KindInt-2]
	_ = x[KindBool-3]
	_ = x[KindBytes-4]
	_ = x[KindCustom-5]
}

const _ValueKind_name = "AbsentStrIntBoolBytesCustom"

var _ValueKind_index = [...]uint8{0, 6, 9, 12, 16, 21, 27}

func (i ValueKind) String() string {
	if i < 0 || i >= ValueKind(len(_ValueKind_index)-1) {
		return "ValueKind(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _ValueKind_name[_ValueKind_index[i]:_ValueKind_index[i+1]]
}
