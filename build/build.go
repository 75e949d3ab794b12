package build

// ตัวแปรพวกนี้จะถูกกำหนดค่าตอน build ผ่าน -ldflags
var (
	Version = "local-dev"
	Time    = "n/a"
)
