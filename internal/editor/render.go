package editor

// expandTabs writes the display form of src into dst, which must be empty:
// each tab becomes one or more spaces up to the next multiple of tabStop.
func expandTabs(dst, src []byte, tabStop int) []byte {
	for _, c := range src {
		if c != '\t' {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, ' ')
		for len(dst)%tabStop != 0 {
			dst = append(dst, ' ')
		}
	}
	return dst
}

// RawToRenderCol returns the rendered column of stored column rawCol.
func RawToRenderCol(chars []byte, rawCol, tabStop int) int {
	rx := 0
	for i := 0; i < rawCol && i < len(chars); i++ {
		if chars[i] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToRawCol returns the stored column whose rendering covers renderCol.
// Columns past the end map to len(chars).
func RenderToRawCol(chars []byte, renderCol, tabStop int) int {
	rx := 0
	for cx, c := range chars {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
		if rx > renderCol {
			return cx
		}
	}
	return len(chars)
}
