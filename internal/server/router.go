package server

import (
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	auctions := router.Group("/auctions")
	{
		auctions.POST("/:auction_id/proxy-bids", auctionHandler.SubmitProxyBidHandler)
		auctions.PUT("/:auction_id/proxy-bids/:bidder_id", auctionHandler.UpdateProxyBidHandler)
		auctions.DELETE("/:auction_id/proxy-bids/:bidder_id", auctionHandler.CancelProxyBidHandler)
		auctions.GET("/:auction_id/proxy-bids/:bidder_id", auctionHandler.GetMyProxyBidHandler)
		auctions.POST("/:auction_id/rejections", auctionHandler.RejectBidderHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.GetPublicBidHistoryHandler)
		auctions.GET("/:auction_id/bids/seller", auctionHandler.GetSellerBidHistoryHandler)
	}

	return router
}
