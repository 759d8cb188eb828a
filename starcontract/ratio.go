package starcontract

// ratio is a weight-per-terminal average kept as an unreduced fraction
// (weight / work()) so comparisons can be done by cross-multiplication in
// 64-bit integer arithmetic, never via floating point. work() is
// terminalCount-1, except terminalCount == 0 which work()s out to 0 and is
// treated as an infinitely bad (maximal) ratio by every comparison below,
// since a fraction with zero denominator can never be beaten on the
// "weight < x*work()" side.
//
// Grounded verbatim on original_source/src/star_contractions.hpp's Ratio
// struct and its operator< / operator<= (int) overloads.
type ratio struct {
	weight        int64
	terminalCount int
}

// infRatio matches the original's inf_ratio sentinel: weight=1,
// terminalCount=0, so work()==0 and every ratio with at least two
// terminals (work() >= 1) compares strictly less than it.
var infRatio = ratio{weight: 1, terminalCount: 0}

func (r ratio) work() int64 {
	if r.terminalCount == 0 {
		return 0
	}
	return int64(r.terminalCount - 1)
}

// less reports whether r represents a smaller weight-per-terminal average
// than o, via cross-multiplication: r.weight/r.work() < o.weight/o.work().
func (r ratio) less(o ratio) bool {
	return r.weight*o.work() < o.weight*r.work()
}

// lessEqual reports r <= o.
func (r ratio) lessEqual(o ratio) bool {
	return !o.less(r)
}

// lessThanInt reports whether r's average is strictly below the plain
// integer x (compared as r.weight < x*r.work()).
func (r ratio) lessThanInt(x int64) bool {
	return r.weight < x*r.work()
}

// greaterEqualInt reports r's average is at least x.
func (r ratio) greaterEqualInt(x int64) bool {
	return !r.lessThanInt(x)
}

// lessEqualInt reports r's average is at most x.
func (r ratio) lessEqualInt(x int64) bool {
	return r.weight <= x*r.work()
}

// add combines two ratios the way the invalidation check does: it is not a
// true sum of fractions, but the specific cross-weighted combination
// star_contractions.hpp's Ratio::operator+ computes, used only to compare
// "how far a cached ratio plus the current best ratio reaches" against a
// plain distance.
func (r ratio) add(o ratio) ratio {
	return ratio{
		weight:        r.weight*o.work() + o.weight*r.work(),
		terminalCount: int(o.work()*r.work()) + 1,
	}
}
