package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=mock_queries
//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review.go -package=mock_queries
//go:generate mockgen -source=group_buy.go -destination=../../../tests/mock/queries/group_buy.go -package=mock_queries
