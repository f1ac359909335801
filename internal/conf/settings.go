package conf

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Setting struct {
	vp *viper.Viper
}

type FeaturesSettingS struct {
	kv       map[string]string
	suites   map[string][]string
	features map[string]string
}

type LoggerSettingS struct {
	Level string
}

type LoggerFileSettingS struct {
	SavePath string
	FileName string
	FileExt  string
}

type ServerSettingS struct {
	RunMode      string
	HttpIp       string
	HttpPort     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AppSettingS struct {
	DefaultPageSize int
	MaxPageSize     int
}

type DatabaseSettingS struct {
	Host     string
	Port     string
	UserName string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
	LogLevel string
}

type RedisSettingS struct {
	Host     string
	Password string
	DB       int
}

type QualitySettingS struct {
	Gateway string
	Timeout time.Duration
}

type NotifySettingS struct {
	Gateway string
}

type MeiliSettingS struct {
	Host   string
	Index  string
	ApiKey string
	Secure bool
}

type CacheSettingS struct {
	ExpireInSecond time.Duration
}

func NewSetting(configPath ...string) (*Setting, error) {
	vp := viper.New()
	vp.SetConfigName("config")
	vp.AddConfigPath(".")
	vp.AddConfigPath("custom/")
	for _, path := range configPath {
		if len(path) != 0 {
			vp.AddConfigPath(path)
		}
	}
	vp.SetConfigType("yaml")
	err := vp.ReadInConfig()
	if err != nil {
		return nil, err
	}

	return &Setting{vp}, nil
}

func (s *Setting) ReadSection(k string, v interface{}) error {
	return s.vp.UnmarshalKey(k, v)
}

func (s *Setting) Unmarshal(objects map[string]interface{}) error {
	for k, v := range objects {
		if err := s.ReadSection(k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Setting) FeaturesFrom(k string) *FeaturesSettingS {
	sub := s.vp.Sub(k)
	if sub == nil {
		return newFeatures(map[string][]string{}, map[string]string{})
	}
	keys := sub.AllKeys()
	suites := make(map[string][]string)
	kv := make(map[string]string, len(keys))
	for _, key := range keys {
		val := sub.Get(key)
		switch v := val.(type) {
		case string:
			kv[key] = v
		case []interface{}:
			suites[key] = sub.GetStringSlice(key)
		default:
			_ = v
		}
	}
	return newFeatures(suites, kv)
}

func newFeatures(suites map[string][]string, kv map[string]string) *FeaturesSettingS {
	features := &FeaturesSettingS{
		suites: suites,
		kv:     kv,
	}
	features.UseDefault()
	return features
}

func (f *FeaturesSettingS) UseDefault() {
	f.features = make(map[string]string)
	f.Use([]string{"default"}, false)
}

// Use enables the features of the given suites. When noDefault is true the
// currently enabled features are discarded first.
func (f *FeaturesSettingS) Use(suite []string, noDefault bool) error {
	if noDefault {
		f.features = make(map[string]string)
	}
	for _, feature := range f.flatFeatures(suite) {
		if len(feature) == 0 {
			continue
		}
		f.features[feature] = f.kv[feature]
	}
	return nil
}

func (f *FeaturesSettingS) flatFeatures(suite []string) []string {
	features := make([]string, 0, len(suite)+10)
	s := make([]string, 0, len(suite))
	for _, item := range suite {
		s = append(s, strings.ToLower(strings.TrimSpace(item)))
	}
	for len(s) > 0 {
		item := s[0]
		s = s[1:]
		if len(item) == 0 {
			continue
		}
		if items, exist := f.suites[item]; exist {
			for _, sub := range items {
				s = append(s, strings.ToLower(strings.TrimSpace(sub)))
			}
		}
		features = append(features, item)
	}
	return features
}

func (f *FeaturesSettingS) Cfg(key string) (string, bool) {
	value, exist := f.features[strings.ToLower(key)]
	return value, exist
}

func (f *FeaturesSettingS) CfgIf(expression string) bool {
	kv := strings.Split(expression, "=")
	key := strings.Trim(kv[0], " ")
	v, ok := f.Cfg(key)
	if len(kv) == 2 && ok && strings.Trim(kv[1], " ") == v {
		return true
	} else if len(kv) == 1 && ok {
		return true
	}
	return false
}

func (s *MeiliSettingS) Endpoint() string {
	schema := "http"
	if s.Secure {
		schema = "https"
	}
	return schema + "://" + s.Host
}

func (s *DatabaseSettingS) Dsn() string {
	host := s.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := s.Port
	if port == "" {
		port = "5432"
	}
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timeZone := s.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}
	return "host=" + host + " port=" + port + " user=" + s.UserName +
		" password=" + s.Password + " dbname=" + s.DBName +
		" sslmode=" + sslMode + " TimeZone=" + timeZone
}
