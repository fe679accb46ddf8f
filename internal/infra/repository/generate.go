package repository

//go:generate mockgen -source=group_buy.go -destination=../../../tests/mock/repository/group_buy.go -package=mock_repository
//go:generate mockgen -source=rating_stats.go -destination=../../../tests/mock/repository/rating_stats.go -package=mock_repository
//go:generate mockgen -source=review.go -destination=../../../tests/mock/repository/review.go -package=mock_repository
//go:generate mockgen -source=user.go -destination=../../../tests/mock/repository/user.go -package=mock_repository
