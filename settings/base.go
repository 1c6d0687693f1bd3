package settings

import (
	"github.com/joho/godotenv"
	"github.com/teadove/teasutils/utils/logger_utils"
	"github.com/teadove/teasutils/utils/settings_utils"
)

type tgSettings struct {
	BotToken string  `env:"BOT_TOKEN,required"`
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`
}

type webSettings struct {
	Addr         string `env:"ADDR" envDefault:":8080"`
	BaseURL      string `env:"BASE_URL"`
	TriggerToken string `env:"TRIGGER_TOKEN"`
}

type baseSettings struct {
	DataDir  string `env:"DATA_DIR" envDefault:"./data"`
	SendTime string `env:"SEND_TIME" envDefault:"09:00"`

	TG  tgSettings  `envPrefix:"TG__"`
	Web webSettings `envPrefix:"WEB__"`
}

// Settings
//nolint: gochecknoglobals // need it
var Settings = mustLoad()

func mustLoad() baseSettings {
	_ = godotenv.Load()
	return settings_utils.MustInitSetting[baseSettings](logger_utils.NewLoggedCtx(), "DUTY_", "TG.BotToken")
}
