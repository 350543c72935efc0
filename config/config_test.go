package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApp(t *testing.T) {
	t.Setenv(AppEnv, "")
	if got := App(""); got != DefaultApp {
		t.Errorf("App(\"\") = %q; want %q", got, DefaultApp)
	}

	t.Setenv(AppEnv, "from-env")
	if got := App(""); got != "from-env" {
		t.Errorf("App(\"\") = %q; want %q", got, "from-env")
	}
	if got := App("from-flag"); got != "from-flag" {
		t.Errorf("App(\"from-flag\") = %q; want %q", got, "from-flag")
	}
}

func TestLoadEnv(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(AppEnv+"=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	t.Setenv(AppEnv, "")
	os.Unsetenv(AppEnv)
	LoadEnv()
	if got := App(""); got != "from-dotenv" {
		t.Errorf("App(\"\") = %q; want %q", got, "from-dotenv")
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	LoadEnv()
}
