package app

import (
	"github.com/abhinav1singhal/social-dining/internal/config"
	http_booking "github.com/abhinav1singhal/social-dining/internal/delivery/http/booking"
	http_init "github.com/abhinav1singhal/social-dining/internal/delivery/http/init"
	http_session "github.com/abhinav1singhal/social-dining/internal/delivery/http/session"
	http_voting "github.com/abhinav1singhal/social-dining/internal/delivery/http/voting"
	infra_agent "github.com/abhinav1singhal/social-dining/internal/infra/agent"
	infra_pg_init "github.com/abhinav1singhal/social-dining/internal/infra/postgres/init"
	infra_postgres_recommendation "github.com/abhinav1singhal/social-dining/internal/infra/postgres/recommendation"
	infra_postgres_session "github.com/abhinav1singhal/social-dining/internal/infra/postgres/session"
	infra_postgres_vote "github.com/abhinav1singhal/social-dining/internal/infra/postgres/vote"
	infra_redis_init "github.com/abhinav1singhal/social-dining/internal/infra/redis/init"
	infra_status_cache "github.com/abhinav1singhal/social-dining/internal/infra/redis/status"
	infra_yelpai "github.com/abhinav1singhal/social-dining/internal/infra/yelpai"
	usecase_booking "github.com/abhinav1singhal/social-dining/internal/usecase/booking"
	usecase_recommend "github.com/abhinav1singhal/social-dining/internal/usecase/recommend"
	usecase_session "github.com/abhinav1singhal/social-dining/internal/usecase/session"
	usecase_vote "github.com/abhinav1singhal/social-dining/internal/usecase/vote"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	sessionRepository := infra_postgres_session.New(pgConn)
	recommendationRepository := infra_postgres_recommendation.New(pgConn)
	voteRepository := infra_postgres_vote.New(pgConn)

	ai := infra_yelpai.New(cfg.YelpAI)
	agent := infra_agent.New(cfg.Agent)
	statusCache := infra_status_cache.New(redisConn, "generation_status")

	sessionUC := usecase_session.New(sessionRepository, recommendationRepository, voteRepository, cfg.HTTP.InviteBase)
	voteUC := usecase_vote.New(voteRepository, sessionRepository)
	recommendUC := usecase_recommend.New(ai, sessionRepository, recommendationRepository, statusCache)
	bookingUC := usecase_booking.New(agent, sessionRepository, recommendationRepository)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_session.New(sessionUC))
	controllerPool.Add(http_voting.New(voteUC, recommendUC))
	controllerPool.Add(http_booking.New(bookingUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
