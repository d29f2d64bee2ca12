// Package ecs provides ECS adapters for snapwheel's gesture and selection
// notifications.
//
// The primary adapter is [NewDonburiBridge], which publishes recognized
// gestures and scroller selections into a [Donburi] world as typed events.
// Subscribe to [GestureEventType] or [SelectionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	bridge := ecs.NewDonburiBridge(world)
//	bridge.ObserveRecognizer(widget.Recognizer)
//	bridge.ObserveScroller(widget.Scroller)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
