package dyespheres

// Rendering and batch defaults.
const (
	ImageSize     = 128
	Radius        = 60.0
	Center        = 63.5
	LightX        = -0.5 // top-left-front light, normalized by DefaultLight
	LightY        = -0.5
	LightZ        = 0.8
	Ambient       = 0.3
	DiffuseWeight = 0.7
	Shininess     = 20
	SpecularScale = 0.4
	ProgressEvery = 50
	OutputDir     = "emoji"
	OutputExt     = ".png"
	InputJSON     = "colors.json"
	IDField       = "itemID"
	ColorField    = "hex"
	SQLiteQuery   = "SELECT item_id, hex FROM colors ORDER BY rowid"
	LogLevel      = "info"
	EnvPrefix     = "DYESPHERES"
)
