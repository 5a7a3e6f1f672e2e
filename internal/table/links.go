package table

import "strconv"

// LinkOptions shapes the pager strip.
type LinkOptions struct {
	// MarginPages is how many pages are always shown at each end.
	MarginPages int
	// PageRange is how many pages are shown around the current one.
	PageRange int
}

// DefaultLinkOptions matches the dashboard's pager: one page at each end and
// two around the cursor.
func DefaultLinkOptions() LinkOptions {
	return LinkOptions{MarginPages: 1, PageRange: 2}
}

// PageLink is one entry in the pager strip: a page or a break ("…").
type PageLink struct {
	Page   int // zero-based; -1 for breaks
	Break  bool
	Active bool
}

// Label is the one-based page number, or "…" for a break.
func (l PageLink) Label() string {
	if l.Break {
		return "…"
	}
	return strconv.Itoa(l.Page + 1)
}

// PageLinks lays out the pager strip for the current page. When every page
// fits in the range all of them are listed; otherwise the margins and the
// range around the cursor are listed and each gap collapses into one break.
// A break that would hide a single page is replaced by that page.
func (v *View[R]) PageLinks(opts LinkOptions) []PageLink {
	count := v.PageCount()
	selected := v.page

	link := func(i int) PageLink {
		return PageLink{Page: i, Active: i == selected}
	}

	var out []PageLink
	if count <= opts.PageRange {
		for i := 0; i < count; i++ {
			out = append(out, link(i))
		}
		return out
	}

	half := float64(opts.PageRange) / 2
	left := half
	right := float64(opts.PageRange) - left

	switch {
	case float64(selected) > float64(count)-half:
		right = float64(count - selected)
		left = float64(opts.PageRange) - right
	case float64(selected) < half:
		left = float64(selected)
		right = float64(opts.PageRange) - left
	}

	// breakAt records the first hidden page of each break.
	breakAt := map[int]int{}
	for i := 0; i < count; i++ {
		page := i + 1
		if page <= opts.MarginPages || page > count-opts.MarginPages {
			out = append(out, link(i))
			continue
		}

		adjustedRight := right
		if selected == 0 && opts.PageRange > 1 {
			adjustedRight = right - 1
		}
		if float64(i) >= float64(selected)-left && float64(i) <= float64(selected)+adjustedRight {
			out = append(out, link(i))
			continue
		}

		if len(out) > 0 && !out[len(out)-1].Break && (opts.PageRange > 0 || opts.MarginPages > 0) {
			breakAt[len(out)] = i
			out = append(out, PageLink{Page: -1, Break: true})
		}
	}

	for j, l := range out {
		if !l.Break || j == 0 || j == len(out)-1 || out[j+1].Break {
			continue
		}
		if out[j+1].Page-out[j-1].Page <= 2 {
			out[j] = link(breakAt[j])
		}
	}
	return out
}
