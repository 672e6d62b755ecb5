package actions

import (
	"github.com/dx-tools/cli/internal/dispatch"
	"github.com/dx-tools/cli/internal/usage"
)

// ValidateMise vetoes the toolchain commands when mise is missing.
var ValidateMise = requireTool("mise")

// Up installs the project's toolchain by delegating to mise. With no
// arguments mise installs everything the project declares; explicit
// tool names narrow the install.
func Up(ctx *dispatch.Context) error {
	tools := ctx.ArgSlice("tools")

	args := append([]string{"install"}, tools...)
	ctx.Logger.Info("up: mise %v", args)
	return ctx.App.Tools.Run("mise", args...)
}

// Run delegates a named task to mise, passing any extra tokens through
// untouched.
func Run(ctx *dispatch.Context) error {
	task, _ := ctx.Arg("task")
	extra := ctx.ArgSlice("args")

	args := append([]string{"run", task}, extra...)
	ctx.Logger.Info("run: mise %v", args)
	return ctx.App.Tools.Run("mise", args...)
}

// Auth delegates authentication to the service's own CLI.
func Auth(ctx *dispatch.Context) error {
	service, ok := ctx.Arg("service")
	if !ok || service == "" {
		service = "github"
	}

	switch service {
	case "github":
		return ctx.App.Tools.Run("gh", "auth", "login")
	case "gcloud":
		return ctx.App.Tools.Run("gcloud", "auth", "login")
	default:
		return usage.ValidationRejected("auth", "unknown service '"+service+"' (expected github or gcloud)")
	}
}

// ValidateAuth checks the service argument and the matching CLI before
// the handler runs.
func ValidateAuth(ctx *dispatch.Context) error {
	service, ok := ctx.Arg("service")
	if !ok || service == "" {
		service = "github"
	}

	switch service {
	case "github":
		return requireTool("gh")(ctx)
	case "gcloud":
		return requireTool("gcloud")(ctx)
	default:
		return usage.ValidationRejected("auth", "unknown service '"+service+"' (expected github or gcloud)")
	}
}
