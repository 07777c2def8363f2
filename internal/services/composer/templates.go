package composer

const marketTemplate = `🌍 **Global Market Overview**

The global financial markets are interconnected and influenced by various factors:

📊 **Key Market Drivers**:
- Economic indicators (GDP, inflation, employment)
- Central bank policies and interest rates
- Geopolitical events and trade relations
- Corporate earnings and sector performance

🔍 **Current Focus Areas**:
- US Federal Reserve policy decisions
- China's economic recovery
- European energy markets
- Emerging market currencies

💡 **Investment Tip**: Diversification across regions and asset classes helps manage risk in volatile markets.`

const forexTemplate = `💱 **Forex Market Insights**

Currency markets are the most liquid financial markets globally, trading $7.5 trillion daily.

**Major Currency Pairs**:
- EUR/USD: Most traded pair, affected by ECB and Fed policies
- USD/JPY: Safe-haven flows influence this pair
- GBP/USD: Brexit and UK economic data drive movements
- USD/INR: Influenced by India's trade balance and RBI policies

**Key Factors Affecting Forex**:
- Interest rate differentials
- Economic growth rates
- Political stability
- Trade balances

⚠️ **Risk Warning**: Forex trading involves high leverage and significant risk.`

const commodityTemplate = `🏆 **Commodity Market Analysis**

Commodities serve as inflation hedges and portfolio diversifiers.

**Precious Metals**:
- Gold: Traditional safe-haven asset, influenced by USD strength and inflation
- Silver: Industrial and investment demand drives prices

**Energy**:
- Crude Oil: Affected by supply disruptions, demand growth, and OPEC decisions
- Natural Gas: Seasonal demand and supply infrastructure impact prices

**Agricultural**:
- Weather patterns, crop yields, and global food demand influence prices

💡 **Investment Note**: Commodities can be volatile but provide portfolio diversification benefits.`

const investmentTemplate = `💰 **Investment Strategy Guidance**

**Key Investment Principles**:
1. **Diversification**: Spread risk across asset classes and regions
2. **Time Horizon**: Align investments with your financial goals
3. **Risk Tolerance**: Only invest what you can afford to lose
4. **Regular Review**: Monitor and rebalance your portfolio

**Asset Allocation Guidelines**:
- **Conservative**: 60% bonds, 40% stocks
- **Moderate**: 50% stocks, 40% bonds, 10% alternatives
- **Aggressive**: 80% stocks, 15% bonds, 5% alternatives

**Before Investing**:
- Build an emergency fund (3-6 months expenses)
- Pay off high-interest debt
- Define clear financial goals

⚠️ **Disclaimer**: This is educational content, not personalized financial advice.`

const helpTemplate = `🤖 **Finance AI Assistant**

I'm here to help with your financial questions! I can provide information about:

📈 **Markets**: Stock prices, market analysis, and trends
💱 **Forex**: Currency exchange rates and trading insights
🏆 **Commodities**: Gold, oil, and other commodity prices
💰 **Investment**: Portfolio strategies and risk management
📊 **Analysis**: Technical and fundamental market analysis

**Try asking**:
- "What's Apple's stock price?"
- "USD to INR exchange rate"
- "Gold price analysis"
- "Best investment strategies for beginners"

How can I assist you with your financial needs today?`
