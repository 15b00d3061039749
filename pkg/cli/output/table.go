/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/client"
	"github.com/JuiHsuanLee0303/hackmd-cli/pkg/cli/log"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	columnPadding   = 2
	columnSeparator = "  "
)

// Column is a column of the note table
type Column struct {
	Label string
	value func(client.Note) string
	color *color.Color
}

// Columns of the note table
var (
	ColumnTitle = Column{
		Label: "Title",
		value: func(n client.Note) string { return n.Title },
		color: color.New(color.FgWhite),
	}
	ColumnID = Column{
		Label: "ID",
		value: func(n client.Note) string { return n.ID },
		color: log.ColorGray,
	}
	ColumnAuthor = Column{
		Label: "Author",
		value: func(n client.Note) string { return n.Author() },
		color: log.ColorBlue,
	}
	ColumnCreated = Column{
		Label: "Created",
		value: func(n client.Note) string { return FormatTime(n.CreatedAt.Time) },
		color: log.ColorYellow,
	}
	ColumnModified = Column{
		Label: "Modified",
		value: func(n client.Note) string { return FormatTime(n.LastChangedAt.Time) },
		color: log.ColorGreen,
	}
	ColumnRead = Column{
		Label: "Read",
		value: func(n client.Note) string { return n.ReadPermission },
		color: color.New(color.FgMagenta),
	}
	ColumnWrite = Column{
		Label: "Write",
		value: func(n client.Note) string { return n.WritePermission },
		color: log.ColorCyan,
	}
	ColumnComment = Column{
		Label: "Comment",
		value: func(n client.Note) string { return n.CommentPermission },
		color: log.ColorRed,
	}
)

// DefaultColumns returns the columns shown when none is requested
func DefaultColumns() []Column {
	return []Column{ColumnTitle, ColumnID}
}

// AllColumns returns every column in display order
func AllColumns() []Column {
	return []Column{
		ColumnTitle,
		ColumnID,
		ColumnAuthor,
		ColumnCreated,
		ColumnModified,
		ColumnRead,
		ColumnWrite,
		ColumnComment,
	}
}

// columnWidths returns the display width of each column: the widest cell or
// the label, plus padding. Widths count terminal cells, not bytes.
func columnWidths(notes []client.Note, columns []Column) []int {
	ret := make([]int, len(columns))

	for i, c := range columns {
		w := 0
		for _, n := range notes {
			if cw := runewidth.StringWidth(c.value(n)); cw > w {
				w = cw
			}
		}

		ret[i] = w + columnPadding
		if lw := runewidth.StringWidth(c.Label) + columnPadding; lw > ret[i] {
			ret[i] = lw
		}
	}

	return ret
}

// Table prints notes as an aligned table with a header
func Table(w io.Writer, notes []client.Note, columns []Column) {
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	widths := columnWidths(notes, columns)

	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		header[i] = log.ColorCyan.Sprint(runewidth.FillRight(c.Label, widths[i]))
		rule[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(w, strings.Join(header, columnSeparator))
	fmt.Fprintln(w, strings.Join(rule, columnSeparator))

	for _, n := range notes {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.color.Sprint(runewidth.FillRight(c.value(n), widths[i]))
		}
		fmt.Fprintln(w, strings.Join(row, columnSeparator))
	}
}
