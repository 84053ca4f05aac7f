package metadata

// Select evaluates the filter set against items and returns the positions
// of the items that match every filter.
//
// Each filter produces its own bitmap, restricted to the positions that
// survived the previous filters, and the result is the intersection. An
// empty filter set selects every item.
func Select[S Source](fs *FilterSet, items []S) (*Bitmap, error) {
	result := Range(len(items))
	if fs == nil {
		return result, nil
	}

	for i := range fs.Filters {
		if result.IsEmpty() {
			break
		}
		f := &fs.Filters[i]
		matched := NewBitmap()
		for pos := range result.Positions() {
			ok, err := f.Matches(items[pos])
			if err != nil {
				return nil, err
			}
			if ok {
				matched.Add(pos)
			}
		}
		result.And(matched)
	}
	return result, nil
}
