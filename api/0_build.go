package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/sortlab/sortlab/session"
)

func Build(s *session.Session, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		injectSession(s),
	)

	v1.Resource("/records").
		WithActions(
			box.Get(listRecords),
			box.Post(loadRecords),
			box.ActionPost(find),
			box.ActionPost(sortByName),
			box.ActionPost(sortByCategory),
			box.ActionPost(sortByPriority),
			box.ActionPost(search),
		)

	v1.Resource("/results").
		WithActions(
			box.Get(listResults),
			box.Action(leaderboard),
		)

	v1.Resource("/version").
		WithActions(
			box.Get(func() string {
				return version
			}).WithName("getVersion"),
		)

	return b
}

const contextSessionKey = "sortlab_session"

func injectSession(s *session.Session) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(context.WithValue(ctx, contextSessionKey, s))
		}
	}
}

func getSession(ctx context.Context) *session.Session {
	s, _ := ctx.Value(contextSessionKey).(*session.Session)
	return s
}
