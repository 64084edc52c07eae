// Package pagealign provides page-boundary arithmetic shared by the vm and
// pinned packages. All functions require page to be a positive power of two,
// which is what every supported platform reports.
package pagealign

// Up returns n aligned up to the next multiple of page.
//
// Example (page = 4096):
//
//	Up(0)    = 0
//	Up(1)    = 4096
//	Up(4096) = 4096
//	Up(4097) = 8192
func Up(n, page int) int {
	return (n + page - 1) &^ (page - 1)
}

// Down returns n aligned down to the previous multiple of page.
//
// Example (page = 4096):
//
//	Down(0)    = 0
//	Down(4095) = 0
//	Down(4096) = 4096
//	Down(8191) = 4096
func Down(n, page int) int {
	return n &^ (page - 1)
}

// Pages returns the number of whole pages needed to hold n bytes.
func Pages(n, page int) int {
	return Up(n, page) / page
}

// IsAligned reports whether n is a multiple of page.
func IsAligned(n, page int) bool {
	return n&(page-1) == 0
}

// PowerOfTwo reports whether page is a positive power of two.
func PowerOfTwo(page int) bool {
	return page > 0 && page&(page-1) == 0
}
