// Package widgets provides reference components built on package core.
//
// Containers:
//
//   - [Row] and [Column] pack children along one axis; [Flexible] children
//     share the leftover space by weight.
//   - [Padding], [SizedBox], [Border] and [Styled] wrap a single child.
//
// Leaves:
//
//   - [Text] paints cell-width aware text.
//   - [Meter] shows a used/total pair with a bar.
//   - [Counter] and [Sparkline] are stateful: build them with [core.Build]
//     under a [core.BuildContext] whose key path is stable across frames.
//
// Every widget is generic over the application message type M, which only
// stateful leaves use (see [CounterProps.OnChange]).
//
//	root := widgets.Column[Msg]{Children: []core.Component[Msg]{
//	    widgets.Text[Msg]{Content: "dashboard"},
//	    widgets.Flexible[Msg]{Flex: 1, Child: widgets.Border[Msg]{Title: "cpu", Child: spark}},
//	}}
//
// Widgets are plain values; build a fresh tree every frame.
package widgets
