package app

import (
	"github.com/vk/signalgridgo/blocks/compare"
	"github.com/vk/signalgridgo/blocks/cross"
	"github.com/vk/signalgridgo/blocks/fetch"
	"github.com/vk/signalgridgo/blocks/logic"
	"github.com/vk/signalgridgo/blocks/obv"
	"github.com/vk/signalgridgo/blocks/sma"
	"github.com/vk/signalgridgo/blocks/source"
	"github.com/vk/signalgridgo/blocks/stream"
	"github.com/vk/signalgridgo/blocks/vwap"
	"github.com/vk/signalgridgo/internal/registry"
)

// coreModules is the definitive list of all block modules that are compiled
// into the signalgrid binary.
var coreModules = []registry.Module{
	&source.Module{},
	&fetch.Module{},
	&stream.Module{},
	&obv.Module{},
	&vwap.Module{},
	&sma.Module{},
	&cross.Module{},
	&compare.Module{},
	&logic.Module{},
}
