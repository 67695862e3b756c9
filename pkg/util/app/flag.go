package app

import (
	goflag "flag"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

var klogFlags = goflag.NewFlagSet("klog", goflag.ContinueOnError)

var initOnce sync.Once

// initFlag registers the klog flags once per process.
func initFlag() {
	initOnce.Do(func() {
		klog.InitFlags(klogFlags)
	})
}

// addGoFlags exposes the klog flags on fs.
func addGoFlags(fs *pflag.FlagSet) {
	fs.AddGoFlagSet(klogFlags)
}

// wordSepNormalizeFunc changes all flags that contain "_" separators.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.Replace(name, "_", "-", -1))
	}
	return pflag.NormalizedName(name)
}

// FormatBaseName strips the directory and, on windows, the .exe suffix of
// a binary name.
func FormatBaseName(basename string) string {
	basename = filepath.Base(basename)
	if runtime.GOOS == "windows" {
		basename = strings.ToLower(basename)
		basename = strings.TrimSuffix(basename, ".exe")
	}
	return basename
}
