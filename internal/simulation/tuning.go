package simulation

const (
	PlayersPerTeam = 11
	ChaserCount    = 3

	PlayerRadius = 12.0
	BallRadius   = 8.0

	PlayerSpeed = 3.2 // human-controlled, per axis
	AISpeed     = 2.2
	ReturnSpeed = 1.4
	KeeperSpeed = 2.0
	HomeEpsilon = 2.0

	KeeperLineOffset = 30.0
	KeeperBandHalf   = 60.0

	Friction      = 0.98
	Restitution   = 0.7
	StopSpeed     = 0.01
	KickImpulse   = 2.5
	CollisionSlop = 0.5

	ProximityRadius = 24.0
	PassSpeed       = 7.0
	ShotSpeed       = 11.0
	ShotJitterRatio = 0.4 // of goal height
)

// Formation, as fractions of the pitch measured from a team's own goal line.
var (
	defenceDepth  = 0.17
	midfieldDepth = 0.32
	forwardDepth  = 0.44
	gridRows      = []float64{0.2, 0.4, 0.6, 0.8}
	forwardRows   = []float64{0.38, 0.62}
)

const (
	colorTeamA       = "#d62828"
	colorKeeperA     = "#f77f00"
	colorTeamB       = "#1d4ed8"
	colorKeeperB     = "#06b6d4"
	defaultTeamLabel = "Team"
)
