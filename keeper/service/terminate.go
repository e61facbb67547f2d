package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/keeper/errs"
	"github.com/pkg/errors"
)

// Terminate signals pid with TERM, or KILL when force is set. A graceful terminate does not
// wait for the process to exit. System processes are signalled through privilege escalation.
func (svc *Service) Terminate(ctx context.Context, pid int, force bool) error {
	action := string(domain.ActionTerminate)
	target := "pid " + strconv.Itoa(pid)

	release, err := svc.acquire("terminate:" + strconv.Itoa(pid))
	if err != nil {
		return svc.finish(ctx, domain.ActionTerminate, target, "terminate already running",
			errs.NewActionError(action, target, "already in progress", err))
	}
	defer release()

	proc, err := svc.lookupProcess(ctx, pid)
	if err != nil {
		return svc.finish(ctx, domain.ActionTerminate, target, "process lookup failed",
			errs.NewActionError(action, target, reason(err), err))
	}
	target = fmt.Sprintf("%s (pid %d)", proc.Name, pid)

	signal := "-TERM"
	if force {
		signal = "-KILL"
	}
	cmd := domain.NewCommand("kill", signal, strconv.Itoa(pid))
	var res *domain.CommandResult
	if proc.System {
		res, err = svc.Runner.ExecutePrivileged(ctx, cmd)
	} else {
		res, err = svc.Runner.Execute(ctx, cmd)
	}
	if err == nil && !res.Success() && !processGone(res.Stderr) {
		err = domain.RequireSuccess(res)
	}
	if err != nil {
		return svc.finish(ctx, domain.ActionTerminate, target, "terminate failed",
			errs.NewActionError(action, target, reason(err), err))
	}

	refreshAfter(ctx, svc.Processes)
	msg := "sent terminate signal"
	if force {
		msg = "force killed"
	}
	return svc.finish(ctx, domain.ActionTerminate, target, msg, nil)
}

func (svc *Service) lookupProcess(ctx context.Context, pid int) (domain.ProcessRecord, error) {
	snap := svc.Processes.LastSnapshot()
	if snap == nil {
		var err error
		snap, err = svc.Processes.Refresh(ctx)
		if err != nil {
			return domain.ProcessRecord{}, errors.Wrap(err, "list processes")
		}
	}
	for _, p := range snap.Items {
		if p.PID == pid {
			return p, nil
		}
	}
	return domain.ProcessRecord{}, errors.WithMessagef(domain.ErrNotFound, "pid %d is not in the process list", pid)
}

// processGone reports a kill that found nothing to signal.
func processGone(stderr string) bool {
	return strings.Contains(strings.ToLower(stderr), "no such process")
}
