package parameter

// System Execution Priorities (lower runs first)
// Order is fixed: level load, paddle, ball drive, physics send, step, responses, receive, spawn
const (
	PriorityLevel          = 10
	PriorityPaddle         = 20
	PriorityBallDrive      = 30 // After paddle so held balls follow this tick's anchor
	PriorityPhysicsSend    = 40
	PriorityPhysicsStep    = 50 // Step and collision pipeline
	PriorityBallCollision  = 60
	PriorityBrick          = 70
	PriorityPhysicsReceive = 80
	PrioritySpawn          = 90 // After receive, new entities never see stale physics state
)
