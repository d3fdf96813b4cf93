package parameter

// Unit conversion between pixel space and physics world units
const (
	PixelsPerWorldUnit = 32.0
	WorldUnitRatio     = 1.0 / PixelsPerWorldUnit
)

// Physics engine solver settings
const (
	PhysicsIterations = 10

	// PhysicsDefaultMass is used for rigidbodies created without a mass
	PhysicsDefaultMass = 1.0
)

// Ball tuning, pixels and pixels per second
const (
	BallRadius = 2.75

	// BallBaseForce is the lateral speed of a full-edge paddle hit and the launch speed
	BallBaseForce = 5.0 * PixelsPerWorldUnit

	// BallMaxLinearVelocity clamps every gameplay velocity change
	BallMaxLinearVelocity = 12.0 * PixelsPerWorldUnit

	// BallPaddleDamping scales the vertical speed on paddle deflection
	BallPaddleDamping = 0.97

	// BallSpeedUpMultiplier is applied on every wall or brick reflection
	BallSpeedUpMultiplier = 1.01


	// BallLaunchSpeed is the upward speed given on launch
	BallLaunchSpeed = BallBaseForce

	// BallLaunchCarry is the share of paddle velocity imparted on launch
	BallLaunchCarry = 0.5

	// BallLostMargin is the distance above the bottom edge past which a ball is lost
	BallLostMargin = 5.0

	// BallElasticity and BallFriction shape engine contact resolution only
	BallElasticity = 1.0
	BallFriction   = 0.0
)

// Paddle tuning, pixels and pixels per second
const (
	PaddleSpeed      = 400.0 * 0.016 * TickRate
	PaddleHalfWidth  = 29.0
	PaddleHalfHeight = 4.0
	PaddleBottomGap  = 16.0

	// HeldBallMargin separates a held ball from the paddle surface
	HeldBallMargin = 1.0
)
