// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sheet presents widgets as sheets anchored to an edge of a
window.

A Manager lays out the content of a window and, while a sheet is
presented, an overlay over it and the sheet on top:

	var m sheet.Manager
	m.Options = sheet.DefaultOptions()
	...
	m.Present(&sheet.Content{Widget: w})
	...
	m.Layout(gtx, content)

The frame of a sheet is computed by Presentation from Options: a
frame.Layout places the sheet in the container inset by the larger of
the configured insets and the container margins. Transitions slide the
sheet in from an edge and out across one, or run custom
transition.Animated values. The dimming overlay fades alongside them.

Sheets are not safe for concurrent use; call every method from the
goroutine that lays out the window.
*/
package sheet
