package bfio

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/nets"
	"github.com/reusee/bf/vars"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Nets    nets.Module
}

var (
	inputFlag  = cmds.Var[string]("-i")
	outputFlag = cmds.Var[string]("-o")
)

type InputSpec string

func (Module) InputSpec(
	loader configs.Loader,
) InputSpec {
	return InputSpec(vars.FirstNonZero(
		*inputFlag,
		configs.First[string](loader, "input"),
		"-",
	))
}

type OutputSpec string

func (Module) OutputSpec(
	loader configs.Loader,
) OutputSpec {
	return OutputSpec(vars.FirstNonZero(
		*outputFlag,
		configs.First[string](loader, "output"),
		"-",
	))
}
