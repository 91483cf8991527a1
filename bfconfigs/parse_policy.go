package bfconfigs

import (
	"github.com/reusee/bf/bflang"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

var strictFlag = cmds.Switch("-strict")

func (Module) ParsePolicy(
	loader configs.Loader,
	logger logs.Logger,
) (ret bflang.Policy) {
	defer func() {
		logger.Debug("parse policy", "strict", ret == bflang.PolicyStrict)
	}()

	if *strictFlag {
		return bflang.PolicyStrict
	}
	if configs.First[bool](loader, "strict_symbols") {
		return bflang.PolicyStrict
	}
	return bflang.PolicyPermissive
}
