package enum

// StateMessage is the human-readable companion of an OrderState. The
// catalogue keeps the upstream platform wording; venue-specific rejection
// reasons reuse these values as overrides without changing the state.
type StateMessage string

const (
	StateMessageToFill              StateMessage = "待挂单"
	StateMessageOpen                StateMessage = "待成交"
	StateMessagePartialFilled       StateMessage = "部分成交"
	StateMessageFilled              StateMessage = "全部成交"
	StateMessageToCancel            StateMessage = "待撤单"
	StateMessageCanceled            StateMessage = "已撤单"
	StateMessageRejected            StateMessage = "已拒单"
	StateMessageFailed              StateMessage = "系统错误"
	StateMessageUpLimit             StateMessage = "证券涨停"
	StateMessageDownLimit           StateMessage = "证券跌停"
	StateMessageSellout             StateMessage = "无可卖头寸或现金"
	StateMessageNoAmount            StateMessage = "当日无成交量"
	StateMessageNoNav               StateMessage = "当日无净值"
	StateMessagePriceUncover        StateMessage = "限价单价格未到"
	StateMessageNincHalt            StateMessage = "证券代码不满足条件或证券停牌"
	StateMessageTypeError           StateMessage = "订单类型错误"
	StateMessageInvalidPrice        StateMessage = "限价单价格越界"
	StateMessageInactive            StateMessage = "证券已下市"
	StateMessageInvalidSymbol       StateMessage = "下单合约非法"
	StateMessageNoEnoughCash        StateMessage = "可用现金不足"
	StateMessageNoEnoughMargin      StateMessage = "可用保证金不足"
	StateMessageNoEnoughAmount      StateMessage = "可用持仓不足"
	StateMessageNoEnoughCloseAmount StateMessage = "可平持仓数量不足"
	StateMessageNoEnoughShare       StateMessage = "可赎回份额不足"
	StateMessageInvalidAmount       StateMessage = "下单数量非法"
	StateMessageInvalidPortfolio    StateMessage = "订单无对应组合持仓"
)

// DefaultMessage returns the 1:1 message bound to a state.
func DefaultMessage(state OrderState) StateMessage {
	switch state {
	case OrderStateSubmitted:
		return StateMessageToFill
	case OrderStateOpen:
		return StateMessageOpen
	case OrderStatePartialFilled:
		return StateMessagePartialFilled
	case OrderStateFilled:
		return StateMessageFilled
	case OrderStateCancelSubmitted:
		return StateMessageToCancel
	case OrderStateCanceled:
		return StateMessageCanceled
	case OrderStateRejected:
		return StateMessageRejected
	case OrderStateError:
		return StateMessageFailed
	default:
		return ""
	}
}
