package main

import (
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfio"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	VM      bfvm.Module
	IO      bfio.Module
	Debugs  debugs.Module
}
