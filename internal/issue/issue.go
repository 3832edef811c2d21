// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidInputId Id = iota + 1
	NotArchiveId
	MissingEntryId
	MalformedXMLId
	MissingAttributeId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	invalidInputIssue = &Issue{
		id: InvalidInputId,
		mdMsg: `
# Input file not usable!

The path you supplied does not exist or is not a regular file.

## Things you can try:
- Check the path for typos
- Make sure the file has not been moved or deleted
- Quote paths that contain spaces`,
	}

	notArchiveIssue = &Issue{
		id: NotArchiveId,
		mdMsg: `
# Not a FreeCAD document!

The file exists but is not a zip archive, so it cannot be an FCStd document.

## Things you can try:
- Verify the file opens in FreeCAD
- Check that a download or copy completed; truncated archives fail to open
- If the file was exported, re-save it from FreeCAD as .FCStd`,
	}

	missingEntryIssue = &Issue{
		id: MissingEntryId,
		mdMsg: `
# Archive has no Document.xml!

The file is a zip archive, but the internal document description is missing.
Every FCStd document carries a Document.xml entry.

## Things you can try:
- Verify the file is a FreeCAD document rather than an ordinary zip
- Re-save the document from FreeCAD`,
	}

	malformedXMLIssue = &Issue{
		id: MalformedXMLId,
		mdMsg: `
# Document description is not well-formed!

Document.xml could not be parsed as XML.

## Things you can try:
- Re-save the document from FreeCAD
- Restore the file from a backup; partial writes corrupt the XML`,
	}

	missingAttributeIssue = &Issue{
		id: MissingAttributeId,
		mdMsg: `
# Document structure is incomplete!

An object or property in Document.xml lacks a required attribute (such as an
object's name), so the document cannot be audited reliably.

## Things you can try:
- Open and re-save the document in FreeCAD to normalize its structure
- Run with --verbose to see which element was rejected`,
	}

	issues = map[Id]*Issue{
		InvalidInputId:     invalidInputIssue,
		NotArchiveId:       notArchiveIssue,
		MissingEntryId:     missingEntryIssue,
		MalformedXMLId:     malformedXMLIssue,
		MissingAttributeId: missingAttributeIssue,
	}
)

// Get returns the registered issue for id, or nil when none exists.
func Get(id Id) *Issue {
	return issues[id]
}

// Ids returns the registered issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
