package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=mock_commands
//go:generate mockgen -source=purchase_request.go -destination=../../../tests/mock/commands/purchase_request.go -package=mock_commands
//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review.go -package=mock_commands
//go:generate mockgen -source=listing.go -destination=../../../tests/mock/commands/listing.go -package=mock_commands
//go:generate mockgen -source=group_buy.go -destination=../../../tests/mock/commands/group_buy.go -package=mock_commands
//go:generate mockgen -source=proof.go -destination=../../../tests/mock/commands/proof.go -package=mock_commands
