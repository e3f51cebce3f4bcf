// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

type Position struct {
	lineNum *int // 1 based
	colNum  *int // 1 based
	file    string
	known   bool
}

func NewPosition(lineNum int) *Position {
	if lineNum <= 0 {
		panic("Lines are 1 based")
	}
	return &Position{lineNum: &lineNum, known: true}
}

// NewPositionWithCol returns the Position of line "lineNum", column
// "colNum", both 1 based.
func NewPositionWithCol(lineNum, colNum int) *Position {
	p := NewPosition(lineNum)
	if colNum <= 0 {
		panic("Columns are 1 based")
	}
	p.colNum = &colNum
	return p
}

// NewPositionInFile returns the Position of line "lineNum" within the file "file"
func NewPositionInFile(lineNum int, file string) *Position {
	p := NewPosition(lineNum)
	p.file = file
	return p
}

// NewUnknownPosition is equivalent of zero value *Position
func NewUnknownPosition() *Position {
	return &Position{}
}

// NewUnknownPositionInFile produces a Position of a known file at an unknown line.
func NewUnknownPositionInFile(file string) *Position {
	return &Position{file: file}
}

func (p *Position) IsKnown() bool { return p != nil && p.known }

func (p *Position) LineNum() int {
	if !p.IsKnown() {
		panic("Position is unknown")
	}
	if p.lineNum == nil {
		panic("Position was not properly initialized")
	}
	return *p.lineNum
}

// ColNum returns the 1 based column, or 0 when no column was recorded.
func (p *Position) ColNum() int {
	if p == nil || p.colNum == nil {
		return 0
	}
	return *p.colNum
}

func (p *Position) GetFile() string {
	return p.file
}

func (p *Position) SetFile(file string) { p.file = file }

func (p *Position) AsString() string {
	if p.ColNum() > 0 {
		return fmt.Sprintf("line %s col %d", p.AsCompactString(), p.ColNum())
	}
	return "line " + p.AsCompactString()
}

func (p *Position) AsCompactString() string {
	filePrefix := p.file
	if len(filePrefix) > 0 {
		filePrefix += ":"
	}
	if p.IsKnown() {
		return fmt.Sprintf("%s%d", filePrefix, p.LineNum())
	}
	return fmt.Sprintf("%s?", filePrefix)
}

func (p *Position) DeepCopy() *Position {
	if p == nil {
		return nil
	}
	newPos := &Position{file: p.file, known: p.known}
	if p.lineNum != nil {
		lineVal := *p.lineNum
		newPos.lineNum = &lineVal
	}
	if p.colNum != nil {
		colVal := *p.colNum
		newPos.colNum = &colVal
	}
	return newPos
}
