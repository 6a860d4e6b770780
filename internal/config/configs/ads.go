package configs

// Ads configures the engine itself. Enabled is the administrative kill
// switch: when false the delivery and click endpoints answer without
// consulting storage. AdminKey gates the reporting endpoint; an empty key
// fails closed (every reporting request is rejected).
type Ads struct {
	Enabled  bool   `env:"ENABLED" envDefault:"true"`
	AdminKey string `env:"ADMIN_KEY" envDefault:""`
}
