// Package runeset counts runes in a compact paged table.
package runeset

// Counter counts occurrences of runes. BMP code points (0..65535) live in a
// two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 counters.
//
// Lookup is O(1) with two array reads. Runes beyond the BMP are rare in
// dictionaries and are kept in a plain map.
//
// Memory:
//   - Top: 256 * 2 = 512 bytes
//   - Each populated page: 256 * 4 = 1 KB
//
// A dictionary of CJK words touches some 80 high-byte blocks => ~80 KB.
type Counter struct {
	Top    [256]uint16 // page index (1-based); 0 means none
	Pages  []uint32    // flat: NumPages*256
	astral map[rune]uint32
	n      int // number of runes with count > 0
}

// Count returns the current count of r.
func (c *Counter) Count(r rune) uint32 {
	if r < 0 {
		return 0
	}
	if r > 0xFFFF {
		return c.astral[r]
	}
	pi := c.Top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return c.Pages[base+int(r&0xFF)]
}

// Contains reports whether the count of r is positive.
func (c *Counter) Contains(r rune) bool {
	return c.Count(r) > 0
}

// Len returns the number of distinct runes with a positive count.
func (c *Counter) Len() int {
	return c.n
}

// NumPages returns the number of allocated BMP pages.
func (c *Counter) NumPages() int { return len(c.Pages) >> 8 }

// Add increments the count of r.
func (c *Counter) Add(r rune) {
	if r < 0 {
		return
	}
	if r > 0xFFFF {
		if c.astral == nil {
			c.astral = make(map[rune]uint32)
		}
		if c.astral[r] == 0 {
			c.n++
		}
		c.astral[r]++
		return
	}
	p := c.slot(uint16(r))
	if *p == 0 {
		c.n++
	}
	*p++
}

// Remove decrements the count of r. Removing an absent rune is a no-op.
func (c *Counter) Remove(r rune) {
	if r < 0 {
		return
	}
	if r > 0xFFFF {
		switch c.astral[r] {
		case 0:
		case 1:
			delete(c.astral, r)
			c.n--
		default:
			c.astral[r]--
		}
		return
	}
	if c.Top[r>>8] == 0 {
		return
	}
	p := c.slot(uint16(r))
	if *p == 0 {
		return
	}
	*p--
	if *p == 0 {
		c.n--
	}
}

// Reset drops all counts. Allocated pages are kept.
func (c *Counter) Reset() {
	clear(c.Pages)
	c.astral = nil
	c.n = 0
}

// ensurePage ensures that the page for high byte hi exists.
// Returns the 1-based page index.
func (c *Counter) ensurePage(hi uint16) uint16 {
	pi := c.Top[hi]
	if pi != 0 {
		return pi
	}
	// allocate a new page (256 counters initialized to 0)
	c.Pages = append(c.Pages, make([]uint32, 256)...)
	pi = uint16(len(c.Pages) >> 8) // number of pages, 1-based index
	c.Top[hi] = pi
	return pi
}

func (c *Counter) slot(bmp uint16) *uint32 {
	pi := c.ensurePage(bmp >> 8)
	base := int(pi-1) << 8
	return &c.Pages[base+int(bmp&0xFF)]
}
