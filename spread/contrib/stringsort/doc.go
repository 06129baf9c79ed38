// Package stringsort provides an in-place hybrid radix/comparison sort for
// string-like data (spreadsort's string_sort).
//
// # Algorithm
//
// Each radix level looks at one character position of a range:
//   - Characters every element shares are skipped first, a stride at a time
//   - A counting pass builds a histogram of the characters at the offset
//   - A swap-cycle pass moves every element into its bucket (American flag
//     sort), so no second buffer of the input size is ever allocated
//   - Each bucket is then finished by the comparison sort when it is small or
//     the cost model says so, or queued for the next character position
//
// Elements with no character left at the offset form their own bucket, first
// in ascending order and last in descending order. The recursion runs off an
// explicit work list and is capped at a fixed number of levels, after which
// the comparison sort takes over regardless of bucket size.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-spreadsort/spread/contrib/stringsort"
//
//	func SortNames(names []string) {
//	    stringsort.Strings(names)  // In-place ascending sort
//	}
//
//	func SortRecords(rs []Record) {
//	    stringsort.Sort(rs, stringsort.ByKey(func(r Record) string { return r.Name }))
//	}
//
// Any element type can be sorted by supplying an Accessor: a character at an
// offset, a length, and a total order that agrees with both. Character types
// wider than a byte (UTF-16 code units, code points) use a sparse histogram.
//
// # Performance
//
// Inputs below spread.DefaultMinSize elements, and every input when
// SPREADSORT_NO_RADIX is set, go straight to slices.SortFunc. Large inputs
// with long shared prefixes or many duplicates gain the most.
package stringsort
