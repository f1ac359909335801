package conf

import (
	"testing"
)

func TestUseDefault(t *testing.T) {
	suites := map[string][]string{
		"default": {"Postgres", "Redis", "Meili", "Quality", "LogFile"},
		"develop": {"Postgres", "Meili", "LogStd"},
		"slim":    {"Postgres", "Redis", "LogStd"},
	}
	kv := map[string]string{
		"quality": "QualityHTTP",
	}
	features := newFeatures(suites, kv)
	for _, data := range []struct {
		key    string
		expect string
		exist  bool
	}{
		{"Quality", "QualityHTTP", true},
		{"Postgres", "", true},
		{"Meili", "", true},
		{"Redis", "", true},
		{"Mongo", "", false},
	} {
		if v, ok := features.Cfg(data.key); ok != data.exist || v != data.expect {
			t.Errorf("key: %s expect: %s exist: %t got v: %s ok: %t", data.key, data.expect, data.exist, v, ok)
		}
	}
	for exp, res := range map[string]bool{
		"Quality":               true,
		"Quality = QualityHTTP": true,
		"QualityHTTP":           false,
		"default":               true,
	} {
		if ok := features.CfgIf(exp); res != ok {
			t.Errorf("CfgIf(%s) want %t got %t", exp, res, ok)
		}
	}
}

func TestUse(t *testing.T) {
	suites := map[string][]string{
		"default": {"Postgres", "Redis", "Meili", "Quality", "LogFile"},
		"develop": {"Postgres", "Meili", "LogStd"},
		"slim":    {"Postgres", "Redis", "LogStd"},
	}
	kv := map[string]string{
		"quality": "QualityHTTP",
	}
	features := newFeatures(suites, kv)

	features.Use([]string{"develop"}, true)
	for _, data := range []struct {
		key    string
		expect string
		exist  bool
	}{
		{"Quality", "", false},
		{"Redis", "", false},
		{"Postgres", "", true},
		{"Meili", "", true},
		{"Mongo", "", false},
	} {
		if v, ok := features.Cfg(data.key); ok != data.exist || v != data.expect {
			t.Errorf("key: %s expect: %s exist: %t got v: %s ok: %t", data.key, data.expect, data.exist, v, ok)
		}
	}
	for exp, res := range map[string]bool{
		"Quality": false,
		"default": false,
		"develop": true,
	} {
		if ok := features.CfgIf(exp); res != ok {
			t.Errorf("CfgIf(%s) want %t got %t", exp, res, ok)
		}
	}

	features.UseDefault()
	features.Use([]string{"slim", "", "demo"}, false)
	for _, data := range []struct {
		key    string
		expect string
		exist  bool
	}{
		{"Quality", "QualityHTTP", true},
		{"Redis", "", true},
		{"Mongo", "", false},
		{"demo", "", true},
	} {
		if v, ok := features.Cfg(data.key); ok != data.exist || v != data.expect {
			t.Errorf("key: %s expect: %s exist: %t got v: %s ok: %t", data.key, data.expect, data.exist, v, ok)
		}
	}
	for exp, res := range map[string]bool{
		"Quality = QualityHTTP": true,
		"QualityHTTP":           false,
		"default":               true,
		"develop":               false,
		"slim":                  true,
		"demo":                  true,
	} {
		if ok := features.CfgIf(exp); res != ok {
			t.Errorf("CfgIf(%s) want %t got %t", exp, res, ok)
		}
	}
}
