package components

// FieldEventKind 场地事件类型
type FieldEventKind int

const (
	// EventHit 玩家撞上障碍物，本局结束
	EventHit FieldEventKind = iota
	// EventCollected 玩家收集了一个拾取物
	EventCollected
)

// FieldEvent 场地在一个 tick 内产生的事件
//
// 取代回调：FieldSystem.Update 返回事件列表，由 RunController 逐个处理。
// Pickup 仅在 Kind == EventCollected 时有意义。
type FieldEvent struct {
	Kind   FieldEventKind
	Pickup PickupKind
}

// HitEvent 构造撞击事件
func HitEvent() FieldEvent {
	return FieldEvent{Kind: EventHit}
}

// CollectedEvent 构造收集事件
func CollectedEvent(kind PickupKind) FieldEvent {
	return FieldEvent{Kind: EventCollected, Pickup: kind}
}
