package editor

// Rows taken by the status bar and the message bar below the text area.
const barRows = 2

// Viewport is the window of the document currently on screen.
type Viewport struct {
	RowOffset int // First document row shown
	ColOffset int // First rendered column shown
	Rows      int // Text rows on screen (terminal height minus the bars)
	Cols      int // Terminal width
}

func NewViewport(termRows, termCols int) *Viewport {
	v := &Viewport{}
	v.Resize(termRows, termCols)
	return v
}

// Resize updates the viewport for new terminal dimensions.
func (v *Viewport) Resize(termRows, termCols int) {
	v.Rows = max(termRows-barRows, 0)
	v.Cols = max(termCols, 0)
}

// Scroll adjusts the offsets so that the cursor at (row, renderCol) is on
// screen. The cursor itself is never moved.
func (v *Viewport) Scroll(row, renderCol int) {
	if v.Rows > 0 {
		if row < v.RowOffset {
			v.RowOffset = row
		}
		if row >= v.RowOffset+v.Rows {
			v.RowOffset = row - v.Rows + 1
		}
	}
	if v.Cols > 0 {
		if renderCol < v.ColOffset {
			v.ColOffset = renderCol
		}
		if renderCol >= v.ColOffset+v.Cols {
			v.ColOffset = renderCol - v.Cols + 1
		}
	}
}

// ScreenPos returns the 0-based screen position of a document position.
func (v *Viewport) ScreenPos(row, renderCol int) (y, x int) {
	return row - v.RowOffset, renderCol - v.ColOffset
}

// Visible returns the part of a rendered row that fits on screen.
func (v *Viewport) Visible(render []byte) []byte {
	if v.ColOffset >= len(render) {
		return nil
	}
	end := min(len(render), v.ColOffset+v.Cols)
	return render[v.ColOffset:end]
}
