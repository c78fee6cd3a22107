// Command libstracciatella is the C shared library the game engine links
// against. Build it with -buildmode=c-shared.
//
// Ownership: every char* returned here is allocated with malloc and must be
// released with free_string. Every handle returned by create_engine_options
// must be released with free_engine_options. A zero handle means failure.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/stracciatella/internal/capi"
	"github.com/Faultbox/stracciatella/internal/logger"
	"github.com/Faultbox/stracciatella/internal/stracciatella"
)

var table = capi.NewTable(stracciatella.DefaultEnv())

func init() {
	_ = logger.Init("warn", "")
}

func main() {}

func handle(h C.uint64_t) capi.Handle {
	return capi.Handle(h)
}

//export create_engine_options
func create_engine_options(argv **C.char, argc C.size_t) C.uint64_t {
	args := make([]string, 0, int(argc))
	for _, p := range unsafe.Slice(argv, int(argc)) {
		args = append(args, C.GoString(p))
	}

	h, err := table.Create(args)
	if err != nil {
		return 0
	}

	if table.ShouldStartInDebugMode(h) {
		home := table.StracciatellaHome(h)
		if err := logger.InitWithFileConfig("debug", logger.HomeFileConfig(home), true); err == nil {
			logger.Info("debug logging enabled", zap.String("home", home))
		}
	}
	return C.uint64_t(h)
}

//export write_engine_options
func write_engine_options(h C.uint64_t) C.bool {
	if err := table.Write(handle(h)); err != nil {
		logger.Error("writing engine options failed", zap.Error(err))
		return false
	}
	return true
}

//export free_engine_options
func free_engine_options(h C.uint64_t) {
	table.Release(handle(h))
}

//export get_stracciatella_home
func get_stracciatella_home(h C.uint64_t) *C.char {
	return C.CString(table.StracciatellaHome(handle(h)))
}

//export get_vanilla_data_dir
func get_vanilla_data_dir(h C.uint64_t) *C.char {
	return C.CString(table.VanillaDataDir(handle(h)))
}

//export set_vanilla_data_dir
func set_vanilla_data_dir(h C.uint64_t, dir *C.char) {
	table.SetVanillaDataDir(handle(h), C.GoString(dir))
}

//export get_number_of_mods
func get_number_of_mods(h C.uint64_t) C.uint32_t {
	return C.uint32_t(table.ModCount(handle(h)))
}

//export get_mod
func get_mod(h C.uint64_t, index C.uint32_t) *C.char {
	return C.CString(table.Mod(handle(h), uint32(index)))
}

//export get_resolution_x
func get_resolution_x(h C.uint64_t) C.uint16_t {
	return C.uint16_t(table.ResolutionX(handle(h)))
}

//export get_resolution_y
func get_resolution_y(h C.uint64_t) C.uint16_t {
	return C.uint16_t(table.ResolutionY(handle(h)))
}

//export set_resolution
func set_resolution(h C.uint64_t, x, y C.uint16_t) C.bool {
	return table.SetResolution(handle(h), uint16(x), uint16(y)) == nil
}

//export get_resource_version
func get_resource_version(h C.uint64_t) C.int {
	return C.int(table.ResourceVersion(handle(h)))
}

//export set_resource_version
func set_resource_version(h C.uint64_t, name *C.char) C.bool {
	if err := table.SetResourceVersion(handle(h), C.GoString(name)); err != nil {
		logger.Warn("ignoring resource version", zap.Error(err))
		return false
	}
	return true
}

//export should_run_unittests
func should_run_unittests(h C.uint64_t) C.bool {
	return C.bool(table.ShouldRunUnittests(handle(h)))
}

//export should_show_help
func should_show_help(h C.uint64_t) C.bool {
	return C.bool(table.ShouldShowHelp(handle(h)))
}

//export should_run_editor
func should_run_editor(h C.uint64_t) C.bool {
	return C.bool(table.ShouldRunEditor(handle(h)))
}

//export should_start_in_fullscreen
func should_start_in_fullscreen(h C.uint64_t) C.bool {
	return C.bool(table.ShouldStartInFullscreen(handle(h)))
}

//export set_start_in_fullscreen
func set_start_in_fullscreen(h C.uint64_t, v C.bool) {
	table.SetStartInFullscreen(handle(h), bool(v))
}

//export should_start_in_window
func should_start_in_window(h C.uint64_t) C.bool {
	return C.bool(table.ShouldStartInWindow(handle(h)))
}

//export should_start_in_debug_mode
func should_start_in_debug_mode(h C.uint64_t) C.bool {
	return C.bool(table.ShouldStartInDebugMode(handle(h)))
}

//export should_start_without_sound
func should_start_without_sound(h C.uint64_t) C.bool {
	return C.bool(table.ShouldStartWithoutSound(handle(h)))
}

//export set_start_without_sound
func set_start_without_sound(h C.uint64_t, v C.bool) {
	table.SetStartWithoutSound(handle(h), bool(v))
}

//export get_resource_version_string
func get_resource_version_string(version C.int) *C.char {
	return C.CString(capi.ResourceVersionString(int(version)))
}

//export find_ja2_executable
func find_ja2_executable(launcherPath *C.char) *C.char {
	return C.CString(capi.FindJA2Executable(C.GoString(launcherPath)))
}

//export free_string
func free_string(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}
