package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StandingsSource --dir ../usecase --output usecase --outpkg usecasemock --filename standings_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ScoreboardSource --dir ../usecase --output usecase --outpkg usecasemock --filename scoreboard_source_mock.go
